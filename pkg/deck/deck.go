// Package deck describes a presentation as data and assembles it into
// canvases.
//
// A [Deck] is a page size, a list of [Role] records shared across slides,
// and an ordered list of [Slide] entries. Each slide names a [Kind]; the
// assembler registered for that kind turns the slide's payload into
// drawing calls through the layout package. The built-in deck is embedded
// as TOML and can be replaced by any TOML or YAML file with the same shape.
//
// Assembly is deterministic: the same deck always produces the same
// element sequence on every canvas.
package deck

import "github.com/matzehuels/slidedeck/pkg/canvas"

// Kind selects the assembler for a slide.
type Kind string

const (
	KindTitle      Kind = "title"
	KindOverview   Kind = "overview"
	KindRoles      Kind = "roles"
	KindFlow       Kind = "flow"
	KindCards      Kind = "cards"
	KindNavigation Kind = "navigation"
	KindWorkflow   Kind = "workflow"
	KindClosing    Kind = "closing"
)

// Kinds lists every slide kind in the order the built-in deck uses them.
var Kinds = []Kind{
	KindTitle, KindOverview, KindRoles, KindFlow,
	KindCards, KindNavigation, KindWorkflow, KindClosing,
}

// Default page size in inches (16:9 widescreen).
const (
	DefaultWidth  = 13.33
	DefaultHeight = 7.5
	DefaultOutput = "DBB_Prototype_Presentation.pptx"
)

// Deck is the full content table for one presentation.
type Deck struct {
	Title  string  `toml:"title" yaml:"title" json:"title"`
	Output string  `toml:"output" yaml:"output" json:"output,omitempty"`
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
	Roles  []Role  `toml:"roles" yaml:"roles" json:"roles,omitempty"`
	Slides []Slide `toml:"slides" yaml:"slides" json:"slides"`
}

// Role is one user role of the described application. Roles feed the
// roles, flow, navigation and closing slides.
type Role struct {
	Name     string       `toml:"name" yaml:"name" json:"name"`
	Email    string       `toml:"email" yaml:"email" json:"email,omitempty"`
	Password string       `toml:"password" yaml:"password" json:"password,omitempty"`
	Color    canvas.Color `toml:"color" yaml:"color" json:"color"`
	Tint     canvas.Color `toml:"tint" yaml:"tint" json:"tint"`
	Edge     canvas.Color `toml:"edge" yaml:"edge" json:"edge"`
	Duties   []string     `toml:"duties" yaml:"duties" json:"duties,omitempty"`
	Summary  string       `toml:"summary" yaml:"summary" json:"summary,omitempty"`

	// Nav entries read "Label - description".
	Nav []string `toml:"nav" yaml:"nav" json:"nav,omitempty"`
}

// Slide is one page. Only the payload matching Kind is read.
type Slide struct {
	Kind     Kind   `toml:"kind" yaml:"kind" json:"kind"`
	Title    string `toml:"title" yaml:"title" json:"title,omitempty"`
	Subtitle string `toml:"subtitle" yaml:"subtitle" json:"subtitle,omitempty"`

	Cover     *Cover     `toml:"cover" yaml:"cover" json:"cover,omitempty"`
	Panels    []Panel    `toml:"panels" yaml:"panels" json:"panels,omitempty"`
	Flow      *Flow      `toml:"flow" yaml:"flow" json:"flow,omitempty"`
	Screens   []Screen   `toml:"screens" yaml:"screens" json:"screens,omitempty"`
	Note      string     `toml:"note" yaml:"note" json:"note,omitempty"`
	Workflows []Workflow `toml:"workflows" yaml:"workflows" json:"workflows,omitempty"`
	Closing   *Closing   `toml:"closing" yaml:"closing" json:"closing,omitempty"`
}

// Cover is the payload of a title slide.
type Cover struct {
	Title    string `toml:"title" yaml:"title" json:"title"`
	Subtitle string `toml:"subtitle" yaml:"subtitle" json:"subtitle,omitempty"`
	Caption  string `toml:"caption" yaml:"caption" json:"caption,omitempty"`
	Tagline  string `toml:"tagline" yaml:"tagline" json:"tagline,omitempty"`
	Link     string `toml:"link" yaml:"link" json:"link,omitempty"`
}

// Panel is a bordered white box holding one bullet block.
type Panel struct {
	Heading string     `toml:"heading" yaml:"heading" json:"heading"`
	Bullets []string   `toml:"bullets" yaml:"bullets" json:"bullets"`
	Box     canvas.Box `toml:"box" yaml:"box" json:"box"`

	// TextWidth overrides the bullet block width. Zero means Box.W - 0.3.
	TextWidth float64 `toml:"text_width" yaml:"text_width" json:"text_width,omitempty"`
}

// Flow is the payload of a flow slide.
type Flow struct {
	Nodes         []string  `toml:"nodes" yaml:"nodes" json:"nodes"`
	BranchTitle   string    `toml:"branch_title" yaml:"branch_title" json:"branch_title,omitempty"`
	SubflowsTitle string    `toml:"subflows_title" yaml:"subflows_title" json:"subflows_title,omitempty"`
	Subflows      []Subflow `toml:"subflows" yaml:"subflows" json:"subflows,omitempty"`
}

// Subflow is a titled numbered list of steps.
type Subflow struct {
	Title string   `toml:"title" yaml:"title" json:"title"`
	Steps []string `toml:"steps" yaml:"steps" json:"steps"`
}

// Screen is one card on a cards slide.
type Screen struct {
	Name        string       `toml:"name" yaml:"name" json:"name"`
	Roles       string       `toml:"roles" yaml:"roles" json:"roles"`
	Color       canvas.Color `toml:"color" yaml:"color" json:"color"`
	Description string       `toml:"description" yaml:"description" json:"description"`
}

// Workflow is one numbered step panel on a workflow slide.
type Workflow struct {
	Title string       `toml:"title" yaml:"title" json:"title"`
	Color canvas.Color `toml:"color" yaml:"color" json:"color"`
	Steps []string     `toml:"steps" yaml:"steps" json:"steps"`
}

// Closing is the payload of the final slide.
type Closing struct {
	Heading          string   `toml:"heading" yaml:"heading" json:"heading"`
	Caption          string   `toml:"caption" yaml:"caption" json:"caption,omitempty"`
	Links            []Link   `toml:"links" yaml:"links" json:"links,omitempty"`
	CredentialsTitle string   `toml:"credentials_title" yaml:"credentials_title" json:"credentials_title,omitempty"`
	StaffCode        string   `toml:"staff_code" yaml:"staff_code" json:"staff_code,omitempty"`
	TeamTitle        string   `toml:"team_title" yaml:"team_title" json:"team_title,omitempty"`
	Members          []string `toml:"members" yaml:"members" json:"members,omitempty"`
	Guide            string   `toml:"guide" yaml:"guide" json:"guide,omitempty"`
}

// Link is a labeled URL box.
type Link struct {
	Label string       `toml:"label" yaml:"label" json:"label"`
	URL   string       `toml:"url" yaml:"url" json:"url"`
	Color canvas.Color `toml:"color" yaml:"color" json:"color"`
}

// Slide returns the slide at a zero-based index.
func (d *Deck) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(d.Slides) {
		return Slide{}, false
	}
	return d.Slides[i], true
}

// FlowSlides returns the indexes of slides of kind flow.
func (d *Deck) FlowSlides() []int {
	var idx []int
	for i, s := range d.Slides {
		if s.Kind == KindFlow && s.Flow != nil {
			idx = append(idx, i)
		}
	}
	return idx
}
