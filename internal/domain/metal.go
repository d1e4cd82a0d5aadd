package domain

type Metal string

const (
	MetalGold     Metal = "gold"
	MetalSilver   Metal = "silver"
	MetalPlatinum Metal = "platinum"
)

type Karat string

const (
	Karat24 Karat = "24k"
	Karat22 Karat = "22k"
	Karat18 Karat = "18k"
)

// Metals lists every metal the store tracks, in display order.
var Metals = []Metal{MetalGold, MetalSilver, MetalPlatinum}

// Karats lists every purity grade, purest first.
var Karats = []Karat{Karat24, Karat22, Karat18}

// Instrument is the grouping key of rate records: one metal at one purity.
type Instrument struct {
	Metal Metal
	Karat Karat
}

func (i Instrument) String() string {
	return string(i.Metal) + "/" + string(i.Karat)
}
