package Trees

import "github.com/sirupsen/logrus"

// Log is the logger used by trees created without WithLogger. Mutations are traced at Debug level.
var Log = logrus.New()

// Duplicates decides what Insert does with a key that is already in the tree.
type Duplicates uint8

const (
	// DuplicatesRight stores equal keys as a new node in the right subtree of the existing one.
	// Find and Remove then see the shallowest copy first.
	DuplicatesRight Duplicates = iota
	// DuplicatesReplace overwrites the value of the existing node.
	DuplicatesReplace
	// DuplicatesReject keeps the existing value and drops the new one.
	DuplicatesReject
)

func (d Duplicates) String() string {
	switch d {
	case DuplicatesRight:
		return "right"
	case DuplicatesReplace:
		return "replace"
	case DuplicatesReject:
		return "reject"
	}
	return "unknown"
}

type options struct {
	dups Duplicates
	log  *logrus.Logger
}

var defaultOptions = options{dups: DuplicatesRight}

// Option configures a tree at construction. Every node of the tree shares the result.
type Option func(*options)

func WithDuplicates(d Duplicates) Option {
	return func(o *options) {
		o.dups = d
	}
}

// WithLogger sets the logger for the tree. A nil logger restores Log.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func makeOptions(opts []Option) *options {
	o := defaultOptions
	for _, f := range opts {
		f(&o)
	}
	return &o
}

func (o *options) logger() *logrus.Logger {
	if o.log == nil {
		return Log
	}
	return o.log
}

// trace logs op on key at Debug level without building the entry when Debug is off.
func (o *options) trace(op string, key any, msg string) {
	if l := o.logger(); l.IsLevelEnabled(logrus.DebugLevel) {
		l.WithFields(logrus.Fields{"op": op, "key": key}).Debug(msg)
	}
}
