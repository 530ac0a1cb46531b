package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericlevine/gs1parse"
	"github.com/ericlevine/gs1parse/charset"
	"github.com/ericlevine/gs1parse/internal/cache"
	"github.com/ericlevine/gs1parse/internal/logging"
	"github.com/ericlevine/gs1parse/internal/metrics"
	"github.com/ericlevine/gs1parse/symbology"
)

// parseRequest carries either a text payload or base64 encoded bytes.
type parseRequest struct {
	Payload       *string `json:"payload"`
	PayloadBase64 string  `json:"payload_base64"`
	Charset       string  `json:"charset"`
	Verbose       bool    `json:"verbose"`
	FormatHint    string  `json:"format_hint"`
	Decoder       string  `json:"decoder"`
}

// barcodeItem is the response body of /v1/parse.
type barcodeItem struct {
	Raw         string          `json:"raw"`
	Parsed      gs1parse.Result `json:"parsed"`
	DecoderInfo any             `json:"decoder_info"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, errorResponse{Error: msg})
}

func (s *Server) handleParse(c *gin.Context) {
	if s.cfg.MaxPayloadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxPayloadBytes)
	}
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			abort(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		abort(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	decoder, err := symbology.ParseDecoder(req.Decoder)
	if err != nil {
		abort(c, http.StatusBadRequest, err.Error())
		return
	}

	p := s.Parser()
	var raw string
	switch {
	case req.Payload != nil && req.PayloadBase64 != "":
		abort(c, http.StatusBadRequest, "payload and payload_base64 are mutually exclusive")
		return
	case req.Payload != nil:
		raw = *req.Payload
	case req.PayloadBase64 != "":
		b, err := base64.StdEncoding.DecodeString(req.PayloadBase64)
		if err != nil {
			abort(c, http.StatusBadRequest, "payload_base64: "+err.Error())
			return
		}
		if raw, err = charset.Decode(b, req.Charset); err != nil {
			abort(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
	default:
		abort(c, http.StatusBadRequest, "payload is required")
		return
	}

	mode := gs1parse.ModeOf(req.Verbose)
	key := cache.Key(p.Registry().Digest(), mode.String(), req.FormatHint, decoder.String(), raw)
	if body, ok := s.cached(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	start := time.Now()
	res := p.Parse(raw, mode)
	s.metrics.ObserveParse(mode.String(), codes(res), time.Since(start))

	info := symbology.Classify(raw, decoder, symbology.ParseHint(req.FormatHint))
	item := barcodeItem{Raw: raw, Parsed: res, DecoderInfo: info}
	if req.Verbose {
		item.DecoderInfo = symbology.Describe(raw, decoder, info.Format)
	}
	body, err := json.Marshal(item)
	if err != nil {
		abort(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.cache.Set(c.Request.Context(), key, body); err != nil {
		s.log.Warn("cache store failed", logging.Err(err))
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// cached returns a stored response. Cache failures count as misses.
func (s *Server) cached(ctx context.Context, key string) ([]byte, bool) {
	body, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.metrics.CacheRequest(metrics.CacheHit)
		return body, true
	case errors.Is(err, cache.ErrMiss):
		s.metrics.CacheRequest(metrics.CacheMiss)
	default:
		s.metrics.CacheRequest(metrics.CacheError)
		s.log.Warn("cache lookup failed", logging.Err(err))
	}
	return nil, false
}

func codes(res gs1parse.Result) []string {
	out := make([]string, len(res.Elements))
	for i, e := range res.Elements {
		out[i] = e.AI
	}
	return out
}

type aiResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	MaxLength int    `json:"max_length"`
	Fixed     bool   `json:"fixed_length"`
	Decimals  *int   `json:"decimal_position,omitempty"`
}

func (s *Server) handleLookup(c *gin.Context) {
	code := c.Param("code")
	def, ok := s.Parser().Registry().Resolve(code)
	if !ok {
		abort(c, http.StatusNotFound, "unknown application identifier "+code)
		return
	}
	resp := aiResponse{Code: def.Code, Name: def.Name, MaxLength: def.MaxLength, Fixed: def.Fixed}
	if def.HasDecimals {
		d := def.Decimals
		resp.Decimals = &d
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.Parser().Info())
}

func (s *Server) handleHealth(c *gin.Context) {
	reg := s.Parser().Registry()
	cacheOK := s.cache.Ping(c.Request.Context()) == nil
	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"capabilities": gin.H{
			"registry":        reg.Source(),
			"registry_size":   reg.Len(),
			"cache":           cacheOK,
			"api_version":     gs1parse.Version,
			"supported_codes": gs1parse.Info().SupportedFormats,
		},
	})
}
