package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/textai/internal/highlight"
	"github.com/nguyentantai21042004/textai/internal/normalizer"
	"github.com/nguyentantai21042004/textai/internal/session"
	"github.com/nguyentantai21042004/textai/internal/speech"
	"github.com/nguyentantai21042004/textai/internal/summarizer"
)

const (
	cookieName = "textai_session"

	msgNoInput  = "Please provide input method to Summarize Text or Convert to Speech Mode"
	msgTooLarge = "File too large"
)

var errTooLarge = errors.New(msgTooLarge)

type pageData struct {
	Kinds      []normalizer.Kind
	Kind       normalizer.Kind
	Document   string
	Summary    *summarizer.Summary
	Speech     *session.Speech
	Highlight  bool
	Flash      string
	Generation uint64
}

func (s *implServer) session(c *gin.Context) *session.Session {
	id, _ := c.Cookie(cookieName)
	sess, created := s.store.Get(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

func (s *implServer) handleIndex(c *gin.Context) {
	sess := s.session(c)
	snap := sess.Snapshot()

	c.HTML(http.StatusOK, "index.html", pageData{
		Kinds:      normalizer.Kinds,
		Kind:       snap.Kind,
		Document:   snap.Document,
		Summary:    snap.Summary,
		Speech:     snap.Speech,
		Highlight:  snap.Highlight,
		Flash:      snap.Flash,
		Generation: sess.Controller().Generation(),
	})
}

func (s *implServer) handleSummarize(c *gin.Context) {
	sess := s.session(c)
	ctx := c.Request.Context()

	doc, ok := s.loadDocument(c, sess)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	sum := s.deps.Summarizer.Summarize(ctx, doc, s.deps.APIKey)
	sess.SetSummary(sum)
	s.logger.Info(ctx, "Session %s: summary via %s (%d chars)", sess.ID, sum.Path, len(sum.Text))

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *implServer) handleSpeech(c *gin.Context) {
	sess := s.session(c)
	ctx := c.Request.Context()

	doc, ok := s.loadDocument(c, sess)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	clip, err := s.deps.Synthesizer.Synthesize(ctx, doc, s.cfg.Speech.Language)
	if err != nil {
		s.logger.Error(ctx, "Session %s: speech synthesis failed: %v", sess.ID, err)
		sess.Flash(fmt.Sprintf("Speech synthesis failed: %v", err))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	sess.SetSpeech(clip, doc)

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *implServer) handleHighlightToggle(c *gin.Context) {
	sess := s.session(c)
	sess.SetHighlight(c.PostForm("enabled") != "")
	c.Redirect(http.StatusSeeOther, "/")
}

// loadDocument normalizes the submitted input into the session. It returns
// false when there is nothing to act on; the reason is flashed.
func (s *implServer) loadDocument(c *gin.Context, sess *session.Session) (string, bool) {
	ctx := c.Request.Context()

	src, err := s.readSource(c)
	if err != nil {
		sess.Flash(err.Error())
		return "", false
	}

	res, err := s.deps.Normalizer.Normalize(ctx, src)
	if err != nil {
		s.logger.Error(ctx, "Session %s: normalize %s: %v", sess.ID, src.Kind, err)
		sess.Flash(fmt.Sprintf("Could not read input: %v", err))
		return "", false
	}

	sess.SetDocument(src.Kind, res.String())
	if !res.OK() {
		s.logger.Warn(ctx, "Session %s: %s (%v)", sess.ID, res.Reason, res.Cause)
		sess.Flash(res.String())
		return "", false
	}
	if strings.TrimSpace(res.Text) == "" {
		sess.Flash(msgNoInput)
		return "", false
	}
	return res.Text, true
}

func (s *implServer) readSource(c *gin.Context) (normalizer.Source, error) {
	if err := s.parseForm(c); err != nil {
		return normalizer.Source{}, err
	}

	kind, err := normalizer.ParseKind(c.DefaultPostForm("method", string(normalizer.KindText)))
	if err != nil {
		return normalizer.Source{}, err
	}

	src := normalizer.Source{Kind: kind}
	switch kind {
	case normalizer.KindText:
		src.Text = c.PostForm("text")
	case normalizer.KindURL:
		src.URL = strings.TrimSpace(c.PostForm("url"))
	case normalizer.KindPDF, normalizer.KindImage:
		data, err := readUpload(c, "file")
		if err != nil {
			return normalizer.Source{}, err
		}
		src.Data = data
	}
	return src, nil
}

// parseForm reads the request body, capped at server.max_upload_bytes.
func (s *implServer) parseForm(c *gin.Context) error {
	limit := s.cfg.Server.MaxUpload
	if c.Request.ContentLength > limit {
		return errTooLarge
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	var err error
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		err = c.Request.ParseMultipartForm(limit)
	} else {
		err = c.Request.ParseForm()
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errTooLarge
	}
	if err != nil {
		return fmt.Errorf("read form: %w", err)
	}
	return nil
}

func readUpload(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *implServer) handleAudio(attachment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := s.session(c).Snapshot()
		if snap.Speech == nil {
			c.String(http.StatusNotFound, "no audio")
			return
		}
		if attachment {
			c.Header("Content-Disposition", `attachment; filename="speech.mp3"`)
		}
		c.Data(http.StatusOK, speech.MIMEType, snap.Speech.Clip.Data)
	}
}

func (s *implServer) handleSummaryText(c *gin.Context) {
	snap := s.session(c).Snapshot()
	if snap.Summary == nil {
		c.String(http.StatusNotFound, "no summary")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="summary.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(snap.Summary.Text))
}

func (s *implServer) handleSummaryDocx(c *gin.Context) {
	snap := s.session(c).Snapshot()
	if snap.Summary == nil {
		c.String(http.StatusNotFound, "no summary")
		return
	}

	data, err := summarizer.DocxBytes("Summary", snap.Summary.Text, s.cfg.Paths.Temp)
	if err != nil {
		s.logger.Error(c.Request.Context(), "Render docx: %v", err)
		c.String(http.StatusInternalServerError, "could not render docx")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="summary.docx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
}

var templateFuncs = map[string]any{
	"eventNames": func() []highlight.Event {
		return []highlight.Event{highlight.EventPlay, highlight.EventTimeUpdate, highlight.EventPause, highlight.EventEnded}
	},
}
