package host

import "github.com/iburimskiy/portfolio-backdrop/internal/field"

// Section is one page of the portfolio and the background it animates.
type Section struct {
	Key   string
	Title string
	Lines []string
	// Opacity applied when the background is composited onto the page.
	Opacity    float64
	Background func() field.Options
}

func DefaultSections() []Section {
	return []Section{
		{
			Key:   "hero",
			Title: "Home",
			Lines: []string{
				"Hello there! I'm Gagana Methmal",
				"Software Developer | DevOps Enthusiast | Problem Solver",
				"",
				"R  download résumé",
			},
			Opacity:    1,
			Background: field.Hero,
		},
		{
			Key:   "about",
			Title: "About",
			Lines: []string{
				"Skills, education and the path so far.",
			},
			Opacity:    0.5,
			Background: field.About,
		},
		{
			Key:   "projects",
			Title: "Projects",
			Lines: []string{
				"Selected work, newest first.",
			},
			Opacity:    1,
			Background: field.Projects,
		},
		{
			Key:   "contact",
			Title: "Contact",
			Lines: []string{
				"gaganam220@gmail.com",
				"github.com/iamgaganam",
				"linkedin.com/in/gagana-methmal",
			},
			Opacity:    0.5,
			Background: field.About,
		},
	}
}
