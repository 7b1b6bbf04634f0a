// Package web serves the server-rendered pages of the board: the request
// feed and the ask form. The form works without JavaScript; the tag list
// round-trips through hidden inputs and is edited on each POST.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/format"
	"github.com/helpboard/backend/internal/tags"
)

//go:embed templates/*.html
var templateFS embed.FS

// Form actions posted by the ask page.
const (
	actionAddTag    = "add-tag"
	actionRemoveTag = "remove-tag"
	actionSubmit    = "submit"
)

// Requests is what the pages need from the request service.
type Requests interface {
	Create(ctx context.Context, in domain.NewRequest) (domain.Request, error)
	ListPaged(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error)
	Score(text string) int
}

// Handler renders the HTML pages.
type Handler struct {
	requests Requests
	feed     *template.Template
	ask      *template.Template
}

// NewHandler parses the embedded templates. It fails only if a template is
// malformed, which is a build defect.
func NewHandler(requests Requests) (*Handler, error) {
	funcs := template.FuncMap{
		"date":      format.Date,
		"pluralize": format.Pluralize,
		"removeTag": func(tag string) string { return actionRemoveTag + ":" + tag },
	}
	feed, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/feed.html")
	if err != nil {
		return nil, fmt.Errorf("web.NewHandler: feed: %w", err)
	}
	ask, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/ask.html")
	if err != nil {
		return nil, fmt.Errorf("web.NewHandler: ask: %w", err)
	}
	return &Handler{requests: requests, feed: feed, ask: ask}, nil
}

// Routes mounts the pages on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Feed)
	r.Get("/ask", h.AskForm)
	r.Post("/ask", h.Ask)
}

// feedPage is the data behind feed.html.
type feedPage struct {
	Requests   []domain.Request
	Tag        string
	Page       int
	TotalPages int
	Total      int64
	PrevURL    string
	NextURL    string
}

// Feed handles GET /: one page of requests, newest first, with an optional
// ?tag= filter.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tag := strings.TrimSpace(q.Get("tag"))
	params := domain.NewPaginationParams(queryInt(q, "page"), queryInt(q, "limit"))

	requests, total, err := h.requests.ListPaged(r.Context(), tag, params)
	if err != nil {
		slog.ErrorContext(r.Context(), "web: list requests", "error", err)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}

	page := feedPage{
		Requests:   requests,
		Tag:        tag,
		Page:       params.Page,
		TotalPages: params.TotalPages(total),
		Total:      total,
	}
	if page.Page > 1 {
		page.PrevURL = feedURL(tag, page.Page-1)
	}
	if page.Page < page.TotalPages {
		page.NextURL = feedURL(tag, page.Page+1)
	}
	h.render(w, r, h.feed, http.StatusOK, page)
}

// askPage is the data behind ask.html.
type askPage struct {
	Text   string
	Tags   []string
	NewTag string
	Score  int
	Error  string
}

// AskForm handles GET /ask with an empty form.
func (h *Handler) AskForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.ask, http.StatusOK, askPage{Tags: []string{}, Score: h.requests.Score("")})
}

// Ask handles POST /ask. add-tag and remove-tag edit the tag list and
// re-render the form; submit creates the request and redirects to the feed.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	page := askPage{
		Text:   r.PostFormValue("text"),
		Tags:   tags.FromInput(r.PostForm["tags"]),
		NewTag: r.PostFormValue("new_tag"),
	}

	action, arg, _ := strings.Cut(r.PostFormValue("action"), ":")
	switch action {
	case actionAddTag:
		for _, t := range tags.Parse(page.NewTag) {
			page.Tags = tags.Add(page.Tags, t)
		}
		page.NewTag = ""

	case actionRemoveTag:
		page.Tags = tags.Remove(page.Tags, arg)

	case actionSubmit, "":
		// A tag still sitting in the input counts.
		for _, t := range tags.Parse(page.NewTag) {
			page.Tags = tags.Add(page.Tags, t)
		}
		_, err := h.requests.Create(r.Context(), domain.NewRequest{Text: page.Text, Tags: page.Tags})
		if err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if !errors.Is(err, domain.ErrValidation) {
			slog.ErrorContext(r.Context(), "web: create request", "error", err)
			http.Error(w, "something went wrong", http.StatusInternalServerError)
			return
		}
		page.NewTag = ""
		page.Error = domain.ValidationMessage(err)
		page.Score = h.requests.Score(page.Text)
		h.render(w, r, h.ask, http.StatusUnprocessableEntity, page)
		return

	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	page.Score = h.requests.Score(page.Text)
	h.render(w, r, h.ask, http.StatusOK, page)
}

// render executes tmpl into a buffer first so a template error never leaves
// a half-written page behind.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, data any) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.ErrorContext(r.Context(), "web: render", "template", tmpl.Name(), "error", err)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck
	w.Write([]byte(buf.String()))
}

func feedURL(tag string, page int) string {
	v := url.Values{}
	if tag != "" {
		v.Set("tag", tag)
	}
	v.Set("page", strconv.Itoa(page))
	return "/?" + v.Encode()
}

// queryInt returns the integer value of key, or nil if absent or malformed.
func queryInt(q url.Values, key string) *int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return nil
	}
	return &n
}
