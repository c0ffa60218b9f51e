package timeline

// SeriesItem is one entry of a sequential layout.
type SeriesItem struct {
	Name     string
	Duration int
	// Offset shifts this item relative to the end of the previous one;
	// negative values overlap, positive values leave a gap.
	Offset  int
	Visible Predicate
	Render  RenderFunc
}

// Series lays items out back to back starting at frame 0.
// The result still has to go through Schedule for validation.
func Series(items ...SeriesItem) []Scene {
	scenes := make([]Scene, 0, len(items))
	cursor := 0
	for _, it := range items {
		start := cursor + it.Offset
		scenes = append(scenes, Scene{
			Name:     it.Name,
			Start:    start,
			Duration: it.Duration,
			Visible:  it.Visible,
			Render:   it.Render,
		})
		cursor = start + it.Duration
	}
	return scenes
}

// Overlay is a scene spanning the whole composition, e.g. a watermark.
func Overlay(name string, duration int, render RenderFunc) Scene {
	return Scene{Name: name, Start: 0, Duration: duration, Render: render}
}
