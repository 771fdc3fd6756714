package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// Rating is the directional trading intent of a signal.
type Rating string

const (
	// RatingBuy is a signal that tells the caller to buy.
	RatingBuy Rating = "BUY"
	// RatingSell is a signal that tells the caller to sell.
	RatingSell Rating = "SELL"
)

// Qualifier sub-classifies a signal.
type Qualifier string

const (
	// QualifierEntry marks a position-opening signal.
	QualifierEntry Qualifier = "ENTRY"
	// QualifierExit marks a position-closing signal.
	QualifierExit Qualifier = "EXIT"
	// QualifierBoth marks a signal that applies to both entry and exit.
	QualifierBoth Qualifier = "BOTH"
)

// Signal is one directional trading signal emitted for one symbol on one tick.
type Signal struct {
	// ID uniquely identifies the signal for downstream correlation.
	ID string `json:"id"`
	// Time is the time of the bar that triggered the signal.
	Time time.Time `json:"time"`
	// Symbol is the asset the signal applies to.
	Symbol string `json:"symbol"`
	// Rating is the directional intent of the signal.
	Rating Rating `json:"rating"`
	// Qualifier optionally sub-classifies the signal.
	Qualifier optional.Option[Qualifier] `json:"qualifier,omitempty"`
	// Name is the name of the rule or predicate that fired.
	Name string `json:"name"`
	// Reason is a human-readable explanation for the signal.
	Reason string `json:"reason"`
	// RawValue carries the raw evaluation data behind the signal.
	RawValue any `json:"raw_value,omitempty"`
}
