package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// sensitiveFields are attribute names whose values never reach a log line.
// Store connection strings are included since they embed credentials.
var sensitiveFields = []string{
	"password", "secret", "token", "credentials", "authorization", "cookie",
	"apiKey", "api_key", "accessToken", "access_token", "privateKey", "private_key",
	"uri", "mongo_uri", "dsn",
}

var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`), // JWT
	regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`),
	regexp.MustCompile(`^mongodb(\+srv)?://[^/\s]+:[^@/\s]+@`),
}

// DefaultRedactOptions returns the masq options applied to json and text
// output.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFields)+len(sensitiveValues)+1)

	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts, masq.WithFieldPrefix("secret"))

	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return opts
}

// NewReplaceAttr returns a slog ReplaceAttr that redacts sensitive
// attributes. Extra options extend DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
