package biscuit

import (
	"io"
	"time"

	"go.uber.org/zap"
)

// Scheme binds a validated parameter set to runtime options (logging,
// metrics, parallelism). Its methods produce the same keys and
// signatures as the package-level functions, and it is safe for
// concurrent use.
type Scheme struct {
	p       Params
	log     *zap.Logger
	metrics *Metrics
	par     int
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithLogger sets the logger. Only non-secret information (parameter
// set, sizes, durations, verification outcome) is logged, at debug
// level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheme) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *Metrics) Option {
	return func(s *Scheme) {
		s.metrics = m
	}
}

// WithParallelism sets the maximum number of repetitions processed
// concurrently by Sign and Verify. A value of 0 (the default) uses one
// per CPU; a value of 1 makes processing sequential. The output does
// not depend on this setting.
func WithParallelism(n int) Option {
	return func(s *Scheme) {
		if n >= 0 {
			s.par = n
		}
	}
}

// New validates the parameters and returns a Scheme.
func New(p Params, opts ...Option) (*Scheme, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Scheme{p: p, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With(zap.String("params", p.Name))
	s.log.Debug("scheme ready",
		zap.Int("signing_key_size", p.SigningKeySize()),
		zap.Int("verifying_key_size", p.VerifyingKeySize()),
		zap.Int("signature_size", p.SignatureSize()),
		zap.Int("parallelism", s.par))
	return s, nil
}

// Params returns the parameter set.
func (s *Scheme) Params() Params {
	return s.p
}

// KeyGen is [KeyGen] with the scheme's parameters.
func (s *Scheme) KeyGen(rng io.Reader) (skey []byte, vkey []byte, err error) {
	start := time.Now()
	skey, vkey, err = KeyGen(s.p, rng)
	if err != nil {
		s.log.Debug("key generation failed", zap.Error(err))
		s.metrics.observe("keygen", s.p.Name, "error", start)
		return
	}
	s.log.Debug("key pair generated", zap.Duration("elapsed", time.Since(start)))
	s.metrics.observe("keygen", s.p.Name, "ok", start)
	return
}

// Sign is [Sign] with the scheme's parameters and parallelism.
func (s *Scheme) Sign(rng io.Reader, skey []byte, msg []byte) ([]byte, error) {
	start := time.Now()
	sig, err := sign_inner(&s.p, s.par, rng, skey, msg)
	if err != nil {
		s.log.Debug("signing failed", zap.Error(err))
		s.metrics.observe("sign", s.p.Name, "error", start)
		return nil, err
	}
	s.log.Debug("message signed",
		zap.Int("message_size", len(msg)),
		zap.Duration("elapsed", time.Since(start)))
	s.metrics.observe("sign", s.p.Name, "ok", start)
	return sig, nil
}

// Verify is [Verify] with the scheme's parameters and parallelism. The
// reason for a rejection is neither returned nor logged.
func (s *Scheme) Verify(vkey []byte, msg []byte, sig []byte) bool {
	start := time.Now()
	ok := verify_inner(&s.p, s.par, vkey, msg, sig)
	result := "rejected"
	if ok {
		result = "accepted"
	}
	s.log.Debug("signature verified",
		zap.Bool("accepted", ok),
		zap.Duration("elapsed", time.Since(start)))
	s.metrics.observe("verify", s.p.Name, result, start)
	return ok
}
