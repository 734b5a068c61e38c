package model

// Template variable names shared by the default templates.
const (
	VarContent = "content"
	VarTitle   = "title"
	VarSite    = "site"
	VarLinks   = "links"
	VarDate    = "date"
)

// PageVars builds the variables passed to the page wrapper.
func PageVars(title, content string, site map[string]any) map[string]any {
	return map[string]any{
		VarTitle:   title,
		VarContent: content,
		VarSite:    site,
	}
}

// ListVars builds the variables passed to the link-list partial.
func ListVars(links []Link, site map[string]any) map[string]any {
	return map[string]any{
		VarLinks: links,
		VarSite:  site,
	}
}

// PostVars builds the variables passed to the post skeleton.
func PostVars(title, date string) map[string]any {
	return map[string]any{
		VarTitle: title,
		VarDate:  date,
	}
}
