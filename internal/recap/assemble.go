package recap

import (
	"strings"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
)

// Field names a semantic wrap field the assembler knows how to present.
type Field string

const (
	FieldEventsAttended     Field = "events_attended"
	FieldEventsSpokenAt     Field = "events_spoken_at"
	FieldProjects           Field = "projects"
	FieldToolsLearned       Field = "tools_learned"
	FieldChallenges         Field = "challenges"
	FieldOvercomeChallenges Field = "overcome_challenges"
	FieldLessonsLearned     Field = "lessons_learned"
	FieldGrowthJourney      Field = "growth_journey"
	FieldGoals2026          Field = "goals_2026"
	FieldFinalWrap          Field = "final_wrap"
)

// Mode is how a slot's content is presented.
type Mode int

const (
	// ModeList shows up to four non-empty entries as bullets, original order.
	ModeList Mode = iota
	// ModeJoined concatenates all non-empty entries with ", ". Whitespace
	// inside an entry is preserved as-is.
	ModeJoined
	// ModeQuote shows only the first entry of the list, verbatim.
	ModeQuote
	// ModePills shows each non-empty entry as an individual tag label.
	// Order preserved, duplicates allowed.
	ModePills
)

// maxListEntries caps ModeList output. No overflow indicator is shown.
const maxListEntries = 4

// Slot is a presence-gated unit of rendered content. Items is populated for
// ModeList and ModePills, Text for ModeJoined and ModeQuote.
type Slot struct {
	Field Field
	Title string
	Mode  Mode
	Items []string
	Text  string
}

// fieldSpec declares, for one field, its display title, default mode, and how
// to read its values off a wrap. The table is the single source of truth for
// field-to-presentation mapping so the rules cannot drift between variants.
type fieldSpec struct {
	field  Field
	title  string
	mode   Mode
	values func(domain.Wrap) []string
}

// fieldSpecs is ordered by display position within the card.
var fieldSpecs = []fieldSpec{
	{FieldEventsAttended, "Tech Events Attended", ModeList, func(w domain.Wrap) []string { return w.EventsAttended }},
	{FieldProjects, "Projects", ModeList, func(w domain.Wrap) []string { return w.Projects }},
	{FieldEventsSpokenAt, "Events Spoken At", ModeList, func(w domain.Wrap) []string { return w.EventsSpokenAt }},
	{FieldToolsLearned, "New Tools", ModeJoined, func(w domain.Wrap) []string { return w.ToolsLearned }},
	{FieldChallenges, "The Challenge", ModeQuote, func(w domain.Wrap) []string { return w.Challenges }},
	{FieldOvercomeChallenges, "How I Overcame It", ModeQuote, func(w domain.Wrap) []string { return w.OvercomeChallenges }},
	{FieldLessonsLearned, "Lesson Learned", ModeQuote, func(w domain.Wrap) []string { return w.LessonsLearned }},
	{FieldGrowthJourney, "Growth Journey", ModeList, func(w domain.Wrap) []string { return w.GrowthJourney }},
	{FieldGoals2026, "2026 Goals", ModeJoined, func(w domain.Wrap) []string { return w.Goals2026 }},
	{FieldFinalWrap, "Final Word", ModeQuote, func(w domain.Wrap) []string { return w.FinalWrap }},
}

// modeOverrides is the only variant-dependent presentation rule: the girly
// skin renders tools as individual pills instead of joined text.
var modeOverrides = map[Variant]map[Field]Mode{
	VariantGirly: {FieldToolsLearned: ModePills},
}

// modeFor returns the presentation mode for a field under a variant.
func modeFor(spec fieldSpec, v Variant) Mode {
	if m, ok := modeOverrides[v][spec.field]; ok {
		return m
	}
	return spec.mode
}

// Assemble maps a wrap's fields onto visible slots under the given variant.
// A field with no presentable content yields no slot — empty sections are
// omitted, never rendered as empty boxes. Assemble is pure and idempotent.
func Assemble(w domain.Wrap, v Variant) []Slot {
	var slots []Slot
	for _, spec := range fieldSpecs {
		slot, ok := assembleField(w, spec, modeFor(spec, v))
		if !ok {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// assembleField builds one slot, reporting ok=false when the field has no
// content under its mode's presence rule.
func assembleField(w domain.Wrap, spec fieldSpec, mode Mode) (Slot, bool) {
	slot := Slot{Field: spec.field, Title: spec.title, Mode: mode}

	if mode == ModeQuote {
		// Quote mode reads index 0 only; later entries never appear.
		raw := spec.values(w)
		if len(raw) == 0 || raw[0] == "" {
			return Slot{}, false
		}
		slot.Text = raw[0]
		return slot, true
	}

	items := nonEmpty(spec.values(w))
	if len(items) == 0 {
		return Slot{}, false
	}

	switch mode {
	case ModeList:
		if len(items) > maxListEntries {
			items = items[:maxListEntries]
		}
		slot.Items = items
	case ModePills:
		slot.Items = items
	case ModeJoined:
		slot.Text = strings.Join(items, ", ")
	}
	return slot, true
}

// nonEmpty filters out empty-string entries, preserving order. Entries are
// not trimmed: inner whitespace and newlines are content.
func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
