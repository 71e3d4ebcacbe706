package extractor

import "sjsage522/olxworker/logger"

// Observer receives progress events while the cascade runs
type Observer interface {
	StrategyStarted(strategy string)
	SelectorMatched(strategy, selector string, matches int)
	StrategyFinished(strategy string, records int)
	CascadeExhausted()
}

// NopObserver discards all events
type NopObserver struct{}

func (NopObserver) StrategyStarted(string) {}
func (NopObserver) SelectorMatched(string, string, int) {}
func (NopObserver) StrategyFinished(string, int) {}
func (NopObserver) CascadeExhausted() {}

// LogObserver reports cascade progress through the structured logger
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an observer logging for the given target page
func NewLogObserver(target string) *LogObserver {
	return &LogObserver{log: logger.ForCascade(target)}
}

// StrategyStarted logs the strategy being attempted
func (o *LogObserver) StrategyStarted(strategy string) {
	o.log.Debug().Str("strategy", strategy).Msg("Trying extraction strategy")
}

// SelectorMatched logs how many elements a selector matched
func (o *LogObserver) SelectorMatched(strategy, selector string, matches int) {
	o.log.Debug().
		Str("strategy", strategy).
		Str("selector", selector).
		Int("matches", matches).
		Msg("Selector matched elements")
}

// StrategyFinished logs the number of relevant records a strategy produced
func (o *LogObserver) StrategyFinished(strategy string, records int) {
	o.log.Info().Str("strategy", strategy).Int("records", records).Msg("Strategy finished")
}

// CascadeExhausted logs that no strategy produced a record
func (o *LogObserver) CascadeExhausted() {
	o.log.Warn().Msg("All extraction strategies came back empty")
}
