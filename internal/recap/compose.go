package recap

import "github.com/Charwekey/TechWrapSaga/internal/domain"

// rowUnits is the grid denominator: cell spans are expressed in tenths of the
// row width (10 = full, 5 = half, 4+6 = the asymmetric challenge split).
const rowUnits = 10

// Cell is one grid cell holding a slot.
type Cell struct {
	Span int // width in tenths of the row
	Slot Slot
}

// Row is one horizontal band of the bento body.
type Row struct {
	Cells []Cell
}

// Header carries the card header content.
type Header struct {
	Name  string
	Title string
	Year  int
}

// Card is the fully composed render tree for one wrap: header, bento rows,
// footer, plus the theme constants the renderers need.
type Card struct {
	Variant Variant
	Theme   Theme
	Header  Header
	Rows    []Row
	Footer  string
}

// footerText is the site tag shown at the bottom of every card.
const footerText = "techwrapsaga.com"

// Compositor lays out assembled slots into a themed card. There is exactly
// one implementation per variant; all three share the assembler and the
// bento template so presence and omission rules cannot drift between skins.
type Compositor interface {
	Variant() Variant
	Theme() Theme
	Compose(w domain.Wrap) Card
}

// For returns the Compositor for a variant.
func For(v Variant) Compositor {
	switch v {
	case VariantGirly:
		return girlyCompositor{}
	case VariantHybrid:
		return hybridCompositor{}
	}
	return neutralCompositor{}
}

// Compose resolves the wrap's theme and composes the card in one step.
// This is the render entry point the hosting shell calls.
func Compose(w domain.Wrap) Card {
	return For(ResolveVariant(w.Theme)).Compose(w)
}

type girlyCompositor struct{}

func (girlyCompositor) Variant() Variant             { return VariantGirly }
func (girlyCompositor) Theme() Theme                 { return Girly }
func (c girlyCompositor) Compose(w domain.Wrap) Card { return compose(c, w) }

type neutralCompositor struct{}

func (neutralCompositor) Variant() Variant             { return VariantNeutral }
func (neutralCompositor) Theme() Theme                 { return Neutral }
func (c neutralCompositor) Compose(w domain.Wrap) Card { return compose(c, w) }

type hybridCompositor struct{}

func (hybridCompositor) Variant() Variant             { return VariantHybrid }
func (hybridCompositor) Theme() Theme                 { return Hybrid }
func (c hybridCompositor) Compose(w domain.Wrap) Card { return compose(c, w) }

// bentoCell places a field at a span within its template row.
type bentoCell struct {
	field Field
	span  int
}

// bentoTemplate is the static card structure shared by all variants. It never
// reorders itself: an omitted slot leaves its cell absent, and a row whose
// cells are all absent produces no chrome at all (block-level omission).
// The challenge/resolution row uses the asymmetric 4/10 + 6/10 split; the
// challenge pairing always renders first within it.
var bentoTemplate = [][]bentoCell{
	{{FieldEventsAttended, rowUnits}},
	{{FieldProjects, 5}, {FieldEventsSpokenAt, 5}},
	{{FieldToolsLearned, rowUnits}},
	{{FieldChallenges, 4}, {FieldOvercomeChallenges, 6}},
	{{FieldLessonsLearned, rowUnits}},
	{{FieldGrowthJourney, rowUnits}},
	{{FieldGoals2026, rowUnits}},
	{{FieldFinalWrap, rowUnits}},
}

// compose runs the shared assembly and layout for any variant.
func compose(c Compositor, w domain.Wrap) Card {
	byField := make(map[Field]Slot)
	for _, s := range Assemble(w, c.Variant()) {
		byField[s.Field] = s
	}

	year := w.Year
	if year == 0 {
		year = domain.WrapYear
	}

	card := Card{
		Variant: c.Variant(),
		Theme:   c.Theme(),
		Header:  Header{Name: w.Name, Title: w.Title, Year: year},
		Footer:  footerText,
	}

	for _, tmplRow := range bentoTemplate {
		var row Row
		for _, cell := range tmplRow {
			slot, ok := byField[cell.field]
			if !ok {
				continue
			}
			row.Cells = append(row.Cells, Cell{Span: cell.span, Slot: slot})
		}
		if len(row.Cells) > 0 {
			card.Rows = append(card.Rows, row)
		}
	}
	return card
}
