package payment

import "math/rand/v2"

type Method string

const (
	MethodCard   Method = "Card"
	MethodPayPal Method = "PayPal"
	MethodWire   Method = "Wire"
)

// Methods is the closed set a quote chooses from.
var Methods = []Method{MethodCard, MethodPayPal, MethodWire}

// MethodSelector picks one of the offered methods.
type MethodSelector interface {
	Select(methods []Method) Method
}

// RandomSelector picks uniformly. A nil R uses the global source.
type RandomSelector struct {
	R *rand.Rand
}

func (s RandomSelector) Select(methods []Method) Method {
	if s.R != nil {
		return methods[s.R.IntN(len(methods))]
	}
	return methods[rand.IntN(len(methods))]
}

// FixedSelector always picks the same method.
type FixedSelector Method

func (s FixedSelector) Select([]Method) Method { return Method(s) }
