package latex

type TextToken string
type CommandToken string

type VerbatimToken struct {
	Kind string
	Data string
}

type ParameterStart struct {
}

type ParameterEnd struct {
}

type EnvironmentStart struct {
	Name string
}

type EnvironmentEnd struct {
	Name string
}
