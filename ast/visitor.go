package ast

// Visitor is called once per node as Walk descends the document tree,
// pre-order. Every method defaults to a no-op via BaseVisitor, so a caller
// embeds it and overrides only the kinds it cares about.
type Visitor interface {
	VisitDocument(*ContentItem)
	VisitParagraph(*ContentItem)
	VisitSession(*ContentItem)
	VisitDefinition(*ContentItem)
	VisitList(*ContentItem)
	VisitListItem(*ContentItem)
	VisitAnnotation(*ContentItem)
	VisitVerbatimBlock(*ContentItem)
	VisitBlankLineGroup(*ContentItem)
}

// BaseVisitor gives every Visitor method a no-op default; embed it and
// override only what's needed.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocument(*ContentItem)       {}
func (BaseVisitor) VisitParagraph(*ContentItem)      {}
func (BaseVisitor) VisitSession(*ContentItem)        {}
func (BaseVisitor) VisitDefinition(*ContentItem)     {}
func (BaseVisitor) VisitList(*ContentItem)           {}
func (BaseVisitor) VisitListItem(*ContentItem)       {}
func (BaseVisitor) VisitAnnotation(*ContentItem)     {}
func (BaseVisitor) VisitVerbatimBlock(*ContentItem)  {}
func (BaseVisitor) VisitBlankLineGroup(*ContentItem) {}

// Walk visits item, then recurses into its Body and Items in source order.
func Walk(item *ContentItem, v Visitor) {
	dispatch(item, v)
	for i := range item.Body {
		Walk(&item.Body[i], v)
	}
	for i := range item.Items {
		Walk(&item.Items[i], v)
	}
	for i := range item.Annotations {
		Walk(&item.Annotations[i], v)
	}
}

func dispatch(item *ContentItem, v Visitor) {
	switch item.Kind {
	case Document:
		v.VisitDocument(item)
	case Paragraph:
		v.VisitParagraph(item)
	case Session:
		v.VisitSession(item)
	case Definition:
		v.VisitDefinition(item)
	case List:
		v.VisitList(item)
	case ListItem:
		v.VisitListItem(item)
	case Annotation:
		v.VisitAnnotation(item)
	case VerbatimBlock:
		v.VisitVerbatimBlock(item)
	case BlankLineGroup:
		v.VisitBlankLineGroup(item)
	}
}
