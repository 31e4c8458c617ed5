package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/html"
)

type analyzeRequest struct {
	Text      string `json:"text" validate:"required"`
	StripHTML bool   `json:"strip_html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	req := new(analyzeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No text provided"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No text provided"})
	}

	text := req.Text
	if req.StripHTML {
		text = stripHTML(text)
	}
	if strings.TrimSpace(text) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Empty text provided"})
	}

	result, err := s.engine.Analyze(text)
	if err != nil {
		s.logger.Error("analysis failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Analysis failed: " + err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

// stripHTML extracts the text content of an HTML fragment, joining text
// nodes with spaces. Unparseable input falls back to the raw string.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(trimmed)
			}
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}
