package types

// IndicatorType identifies a registered indicator.
type IndicatorType string

const (
	IndicatorTypeSMA              IndicatorType = "sma"
	IndicatorTypeEMA              IndicatorType = "ema"
	IndicatorTypeRSI              IndicatorType = "rsi"
	IndicatorTypeATR              IndicatorType = "atr"
	IndicatorTypeBollingerBands   IndicatorType = "bollinger_bands"
	IndicatorTypeMACD             IndicatorType = "macd"
	IndicatorTypeStochastic       IndicatorType = "stochastic"
	IndicatorTypeBullishEngulfing IndicatorType = "bullish_engulfing"
)
