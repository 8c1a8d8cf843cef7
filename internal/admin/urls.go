package admin

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"
)

// Route group and route names the resolver expects in the urlkit config.
const (
	AdminGroup  = "admin"
	PublicGroup = "public"

	RouteDashboard = "dashboard"
	RoutePageEdit  = "pages.edit"
	RoutePageNew   = "pages.new"
	RoutePage      = "page"
	RouteHome      = "home"
)

// DefaultRouteConfig returns the route groups the admin surface links to,
// ready to merge into a urlkit configuration.
func DefaultRouteConfig(adminBaseURL, publicBaseURL string) []urlkit.GroupConfig {
	return []urlkit.GroupConfig{
		{
			Name:    AdminGroup,
			BaseURL: adminBaseURL,
			Paths: map[string]string{
				RouteDashboard: "/admin/pages",
				RoutePageEdit:  "/admin/pages/:id",
				RoutePageNew:   "/admin/pages/new",
			},
		},
		{
			Name:    PublicGroup,
			BaseURL: publicBaseURL,
			Paths: map[string]string{
				RouteHome: "/",
				RoutePage: "/:slug",
			},
		},
	}
}

// URLResolver builds admin and public URLs for pages through a urlkit route
// manager.
type URLResolver struct {
	manager *urlkit.RouteManager
}

// NewURLResolver constructs a resolver over the given route manager.
func NewURLResolver(manager *urlkit.RouteManager) *URLResolver {
	return &URLResolver{manager: manager}
}

// EditURL returns the admin editor address for a page.
func (r *URLResolver) EditURL(pageID uuid.UUID) (string, error) {
	builder, err := r.builder(AdminGroup, RoutePageEdit)
	if err != nil {
		return "", err
	}
	return builder.WithParam("id", pageID.String()).Build()
}

// NewPageURL returns the admin address that opens a fresh editing session.
func (r *URLResolver) NewPageURL() (string, error) {
	builder, err := r.builder(AdminGroup, RoutePageNew)
	if err != nil {
		return "", err
	}
	return builder.Build()
}

// DashboardURL returns the admin page list address.
func (r *URLResolver) DashboardURL() (string, error) {
	builder, err := r.builder(AdminGroup, RouteDashboard)
	if err != nil {
		return "", err
	}
	return builder.Build()
}

// PreviewURL returns the public address of a page. The homepage resolves to
// the site root instead of its slug.
func (r *URLResolver) PreviewURL(slug string, isHomepage bool) (string, error) {
	if isHomepage {
		builder, err := r.builder(PublicGroup, RouteHome)
		if err != nil {
			return "", err
		}
		return builder.Build()
	}

	builder, err := r.builder(PublicGroup, RoutePage)
	if err != nil {
		return "", err
	}
	return builder.WithParam("slug", slug).Build()
}

// builder resolves a route builder without letting urlkit's panics on
// unknown groups or routes escape.
func (r *URLResolver) builder(groupName, route string) (builder *urlkit.Builder, err error) {
	if r == nil || r.manager == nil {
		return nil, fmt.Errorf("admin: route manager not configured")
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("admin: route %s.%s not configured: %v", groupName, route, rec)
		}
	}()

	group := r.manager.Group(groupName)
	builder = group.Builder(route)
	return builder, err
}
