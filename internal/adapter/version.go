package adapter

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/utils"
	"github.com/MKhiriev/go-wa-sender/models"
)

// The web client script embeds its build number as client_revision, possibly
// inside an escaped JSON string.
var clientRevisionRe = regexp.MustCompile(`\\?"client_revision\\?":\s*(\d+)`)

const discoveryUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

type httpVersionSource struct {
	client *utils.HTTPClient
	url    string
}

// NewVersionSource returns a [VersionSource] that scrapes the web client
// script at cfg.DiscoveryURL.
func NewVersionSource(cfg config.ClientVersion) VersionSource {
	client := utils.NewHTTPClient(cfg.DiscoveryTimeout, discoveryUserAgent)
	client.SetHeader("Sec-Fetch-Dest", "script")

	return &httpVersionSource{
		client: client,
		url:    cfg.DiscoveryURL,
	}
}

func (h *httpVersionSource) Latest(ctx context.Context) (models.ProtocolVersion, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.url)
	if err != nil {
		return models.ProtocolVersion{}, fmt.Errorf("fetch %s: %w", h.url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.ProtocolVersion{}, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus,
			resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	return parseClientRevision(resp.Body())
}

func parseClientRevision(body []byte) (models.ProtocolVersion, error) {
	match := clientRevisionRe.FindSubmatch(body)
	if match == nil {
		return models.ProtocolVersion{}, ErrVersionNotFound
	}

	revision, err := strconv.ParseUint(string(match[1]), 10, 32)
	if err != nil {
		return models.ProtocolVersion{}, fmt.Errorf("%w: %w", ErrVersionNotFound, err)
	}

	return models.ProtocolVersion{2, 3000, uint32(revision)}, nil
}
