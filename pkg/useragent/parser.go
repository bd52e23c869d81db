// Package useragent classifies visitor User-Agent strings into coarse
// device types for the analytics dashboard.
package useragent

import (
	"fmt"
	"os"
	"strings"

	"github.com/ua-parser/uap-go/uaparser"
	"go.uber.org/zap"
)

// Parser wraps the uap-go parser with device type detection.
type Parser struct {
	parser *uaparser.Parser
	log    *zap.Logger
}

// NewParser creates a parser from a uap-core regexes file.
func NewParser(regexFilePath string, log *zap.Logger) (*Parser, error) {
	regexBytes, err := os.ReadFile(regexFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read regexes file: %w", err)
	}

	parser, err := uaparser.NewFromBytes(regexBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create User-Agent parser: %w", err)
	}

	log.Info("User-Agent parser initialized", zap.String("regexes_file", regexFilePath))

	return &Parser{parser: parser, log: log}, nil
}

// DeviceType returns one of "desktop", "mobile", "tablet", "bot" or
// "unknown" for the given User-Agent string.
func (p *Parser) DeviceType(userAgent string) string {
	if userAgent == "" {
		return "unknown"
	}

	client := p.parser.Parse(userAgent)

	family := strings.ToLower(client.Device.Family)
	if family == "spider" || strings.Contains(family, "bot") {
		return "bot"
	}

	os := strings.ToLower(client.Os.Family)
	switch {
	case strings.Contains(family, "ipad") || strings.Contains(family, "tablet"):
		return "tablet"
	case strings.Contains(os, "ios") || strings.Contains(os, "android") ||
		strings.Contains(os, "windows phone"):
		if strings.Contains(strings.ToLower(userAgent), "tablet") {
			return "tablet"
		}
		return "mobile"
	case family == "other" && client.Os.Family == "Other" && client.UserAgent.Family == "Other":
		return Classify(userAgent)
	default:
		return "desktop"
	}
}

// Classify is a keyword fallback used when no regexes file is available.
func Classify(userAgent string) string {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return "unknown"
	}

	for _, keyword := range []string{"bot", "spider", "crawler"} {
		if strings.Contains(ua, keyword) {
			return "bot"
		}
	}
	for _, keyword := range []string{"tablet", "ipad", "kindle", "silk", "playbook"} {
		if strings.Contains(ua, keyword) {
			return "tablet"
		}
	}
	for _, keyword := range []string{"mobile", "android", "iphone", "ipod", "blackberry", "windows phone", "opera mini"} {
		if strings.Contains(ua, keyword) {
			return "mobile"
		}
	}

	return "desktop"
}
