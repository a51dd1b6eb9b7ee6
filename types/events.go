package types

// LifecycleEvent is the lifecycle controller's surface toward the
// presentation layer. Message is only set when Status is failed.
type LifecycleEvent struct {
	Status      UploadStatus `json:"status"`
	Attempt     int          `json:"attempt"`
	Token       string       `json:"token,omitempty"`
	DisplayText string       `json:"displayText"`
	VisualPhase VisualPhase  `json:"visualPhase"`
	Message     string       `json:"message,omitempty"`
}

// TransitionKind tells the presentation layer how to render an index or
// offset change.
type TransitionKind string

const (
	// TransitionNone renders immediately, used for the first view after open.
	TransitionNone TransitionKind = "none"
	// TransitionSlide animates a committed page change.
	TransitionSlide TransitionKind = "slide"
	// TransitionSnapBack returns the view to offset zero without an index change.
	TransitionSnapBack TransitionKind = "snap-back"
	// TransitionDrag follows the pointer live at LiveOffset.
	TransitionDrag TransitionKind = "drag"
)

// GalleryEvent is the carousel controller's surface toward the presentation
// layer. Total is zero while no session is open.
type GalleryEvent struct {
	CurrentIndex   int            `json:"currentIndex"`
	Total          int            `json:"total"`
	LiveOffset     float64        `json:"liveOffset"`
	TransitionKind TransitionKind `json:"transitionKind"`
	PrevEnabled    bool           `json:"prevEnabled"`
	NextEnabled    bool           `json:"nextEnabled"`
}
