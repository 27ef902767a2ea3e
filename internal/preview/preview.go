// Package preview serves a directory of source documents as rendered pages.
package preview

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/stolasapp/elemental/internal/config"
	"github.com/stolasapp/elemental/internal/content"
	"github.com/stolasapp/elemental/internal/page"
	"github.com/stolasapp/elemental/internal/pagination"
	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/element"
	"github.com/stolasapp/elemental/pkg/markup"
)

// sourceExts are the extensions listed in the index.
var sourceExts = []string{".md", ".markdown", ".html", ".htm", ".txt"}

const defaultPageSize = 100

// Index page element IDs and classes.
const (
	idDocumentList  = "documents"
	classPagination = "pagination"
)

// New creates the preview server for the sources in root.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	root fs.FS,
	layout *page.Layout,
) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)

	if cfg.DevMode {
		srv.Debug = true
		srv.Use(logRequests(logger))
	} else {
		srv.Use(middleware.Recover())
	}
	srv.Use(
		middleware.Secure(),
		middleware.RequestID(),
	)

	handler{root: root, layout: layout}.register(srv)
	return srv
}

type handler struct {
	root   fs.FS
	layout *page.Layout
}

func (h handler) register(e *echo.Echo) {
	e.GET("/", h.index)
	e.GET("/*", h.document)
}

// index lists the source documents, a page at a time.
func (h handler) index(c echo.Context) error {
	names, err := h.sources()
	if err != nil {
		return toHTTPError(err)
	}
	names, next, err := pagination.Page(names, func(s string) string { return s }, c.QueryParam("page"), defaultPageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]templ.Component, 0, len(names))
	for _, name := range names {
		items = append(items, element.LI{Content: element.Children(
			element.Anchor{Href: attr.PathURL("/" + name), Content: element.Children(element.Text(name))},
		)})
	}

	var more templ.Component
	if next != "" {
		more = element.Nav{
			Global: element.Global{Class: attr.Class(classPagination)},
			Content: element.Children(element.Anchor{
				Href:    attr.MustURL("href", "/?page="+next),
				Rel:     attr.NewRel(attr.LinkNext),
				Content: element.Children(element.Text("Next")),
			}),
		}
	}

	body := element.Group(
		element.H1{Content: element.Children(element.Text("Documents"))},
		element.UL{Global: element.Global{ID: idDocumentList}, Content: element.Children(items...)},
		more,
	)
	return render(c, h.layout.Document(page.Page{Title: "Documents", Body: body}))
}

// sources returns the paths of all source documents in byte order, the order
// the index pages by. Hidden directories are skipped.
func (h handler) sources() ([]string, error) {
	var names []string
	err := fs.WalkDir(h.root, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if name != "." && strings.HasPrefix(entry.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if slices.Contains(sourceExts, strings.ToLower(path.Ext(name))) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// WalkDir visits a directory's contents before siblings that sort after
	// its name, so "a/x.md" comes before "a.md".
	slices.Sort(names)
	return names, nil
}

// document renders one source document. ?format=markdown returns its text.
func (h handler) document(c echo.Context) error {
	name := strings.TrimPrefix(c.Param("*"), "/")
	if !fs.ValidPath(name) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	data, err := fs.ReadFile(h.root, name)
	if err != nil {
		return toHTTPError(err)
	}
	doc, err := h.layout.Convert(name, data)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	}

	format := content.FormatHTML
	if q := c.QueryParam("format"); q != "" {
		if format, err = content.ParseFormat(q); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if format == content.FormatMarkdown {
		text, err := markup.PlainText(c.Request().Context(), doc)
		if err != nil {
			return toHTTPError(err)
		}
		return c.Blob(http.StatusOK, "text/markdown; charset=UTF-8", []byte(text))
	}
	return render(c, doc)
}

func render(c echo.Context, component templ.Component) error {
	out, err := markup.String(c.Request().Context(), component)
	if err != nil {
		return toHTTPError(err)
	}
	return c.HTML(http.StatusOK, out)
}

// toHTTPError converts an error to an Echo HTTPError with the appropriate
// HTTP status code. Other errors pass through unchanged.
func toHTTPError(err error) error {
	var httpErr *echo.HTTPError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &httpErr):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		return echo.NewHTTPError(http.StatusForbidden)
	case errors.Is(err, element.ErrStructure), errors.Is(err, attr.ErrInvalid):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}

func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("uri", req.RequestURI),
				slog.Duration("latency", latency),
				slog.Int("status", c.Response().Status),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(req.Context(), slog.LevelDebug, "request handled", attrs...)
			return err
		}
	}
}
