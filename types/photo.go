package types

// Photo is a landscape photograph in the gallery catalog.
type Photo struct {
	ID               string           `json:"id" yaml:"id"`
	Src              string           `json:"src" yaml:"src"`
	FallbackSrc      string           `json:"fallbackSrc,omitempty" yaml:"fallback_src"`
	ThumbnailSrc     string           `json:"thumbnailSrc,omitempty" yaml:"thumbnail_src"`
	Alt              string           `json:"alt" yaml:"alt"`
	Title            string           `json:"title" yaml:"title"`
	Location         string           `json:"location" yaml:"location"`
	Story            string           `json:"story" yaml:"story"`
	TechnicalDetails TechnicalDetails `json:"technicalDetails" yaml:"technical_details"`
	Tags             []string         `json:"tags" yaml:"tags"`
	Annotations      []Annotation     `json:"annotations,omitempty" yaml:"annotations"`
}

// TechnicalDetails holds optional capture metadata for a photo.
type TechnicalDetails struct {
	Camera       string `json:"camera,omitempty" yaml:"camera"`
	Lens         string `json:"lens,omitempty" yaml:"lens"`
	Aperture     string `json:"aperture,omitempty" yaml:"aperture"`
	ShutterSpeed string `json:"shutterSpeed,omitempty" yaml:"shutter_speed"`
	ISO          int    `json:"iso,omitempty" yaml:"iso"`
	CaptureDate  string `json:"captureDate,omitempty" yaml:"capture_date"` // YYYY-MM-DD
}

// Annotation is an interactive hotspot overlaid on a photo.
type Annotation struct {
	ID          string             `json:"id" yaml:"id"`
	Title       string             `json:"title" yaml:"title"`
	Description string             `json:"description" yaml:"description"`
	Position    AnnotationPosition `json:"position" yaml:"position"`
	Icon        string             `json:"icon" yaml:"icon"` // mountain, water, glacier, trail, lake, peak
	Details     *AnnotationDetails `json:"details,omitempty" yaml:"details"`
}

// AnnotationPosition is a percentage-based position on the image (0-100).
type AnnotationPosition struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// AnnotationDetails carries optional factual information about a hotspot.
type AnnotationDetails struct {
	Elevation   string   `json:"elevation,omitempty" yaml:"elevation"`
	Temperature string   `json:"temperature,omitempty" yaml:"temperature"`
	Distance    string   `json:"distance,omitempty" yaml:"distance"`
	Facts       []string `json:"facts,omitempty" yaml:"facts"`
}
