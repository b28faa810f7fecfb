package config

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-batchqueue/$GOPACKAGE IServiceConfiguration

// Validator is implemented by anything which can check its own consistency.
type Validator interface {
	// Validate returns an error if the entries are invalid.
	Validate() error
}

// IServiceConfiguration defines a configuration which can be loaded from the environment.
type IServiceConfiguration interface {
	Validator
}
