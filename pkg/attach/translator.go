package attach

import (
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Translator.
type Option func(*Translator)

// WithHomeResolver replaces the default PathHomeResolver.
func WithHomeResolver(r HomeResolver) Option {
	return func(t *Translator) {
		if r != nil {
			t.resolver = r
		}
	}
}

// WithAdapterCommand overrides the adapter executable and its arguments.
func WithAdapterCommand(command string, args ...string) Option {
	return func(t *Translator) {
		if command != "" {
			t.command = command
		}
		t.args = append([]string{}, args...)
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(logger *logrus.Entry) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Translator turns one debug session's configuration into an AdapterBinary.
// It is not safe for concurrent use; create one per session.
type Translator struct {
	session  Session
	resolver HomeResolver
	command  string
	args     []string
	logger   *logrus.Entry
}

// NewTranslator creates a Translator with an empty session.
func NewTranslator(opts ...Option) *Translator {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	t := &Translator{
		resolver: PathHomeResolver{},
		command:  DefaultAdapterCommand,
		args:     []string{},
		logger:   logrus.NewEntry(silent),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Classify caches raw for the next Translate and returns its request kind.
func (t *Translator) Classify(raw json.RawMessage) RequestKind {
	kind := t.session.Classify(raw)
	t.logger.WithField("request", kind).Debug("Classified debug configuration")
	return kind
}

// Session exposes the cached session state.
func (t *Translator) Session() *Session {
	return &t.session
}

// Translate builds the adapter binary for the cached configuration. An
// invalid or missing target is returned unmodified and no bundle is built.
func (t *Translator) Translate(workspaceRoot string) (*AdapterBinary, error) {
	if !t.session.Classified() {
		t.logger.Warn("Translating without a classified configuration")
	}
	cfg := t.session.Config()

	home := t.resolver.ResolveHome(workspaceRoot)
	log := t.logger.WithFields(logrus.Fields{
		"workspace": workspaceRoot,
		"home":      home,
	})

	attachCmds, err := BuildAttachCommands(cfg, home)
	if err != nil {
		log.WithError(err).Debug("Rejected debug configuration")
		return nil, err
	}

	bundle := Bundle{
		AttachCommands: attachCmds,
		PathMappings:   ExpandPathMappings(cfg, home),
		InitCommands:   BuildInitCommands(cfg, home),
	}
	if soe := cfg.Get(KeyStopOnEntry); soe.Exists() {
		bundle.StopOnEntry = json.RawMessage(compactJSON(soe.Raw))
	}
	env := ForwardEnv(cfg)

	log.WithFields(logrus.Fields{
		"attach_commands": len(bundle.AttachCommands),
		"init_commands":   len(bundle.InitCommands),
		"path_mappings":   len(bundle.PathMappings),
		"env":             len(env),
	}).Debug("Translated debug configuration")

	return &AdapterBinary{
		Command:       t.command,
		Arguments:     append([]string{}, t.args...),
		Env:           env,
		Request:       t.session.Kind(),
		Configuration: bundle,
	}, nil
}
