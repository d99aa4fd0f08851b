package domain

// QueryKind is the shape of a lookup query. It decides which providers are eligible.
type QueryKind string

const (
	QueryKindWord   QueryKind = "WORD"
	QueryKindPhrase QueryKind = "PHRASE"
)

func (k QueryKind) String() string { return string(k) }

func (k QueryKind) IsValid() bool {
	switch k {
	case QueryKindWord, QueryKindPhrase:
		return true
	}
	return false
}

// Source identifies the provider that produced a LookupResult.
type Source string

const (
	SourcePrimary   Source = "primary"
	SourceSecondary Source = "secondary"
)

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourcePrimary, SourceSecondary:
		return true
	}
	return false
}
