package strategy

import (
	"testing"
	"time"

	"github.com/quantfold/signalstream/internal/config"
	"github.com/quantfold/signalstream/internal/engine"
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/logger"
	"github.com/quantfold/signalstream/internal/types"
	"github.com/quantfold/signalstream/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type StrategyTestSuite struct {
	suite.Suite
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategyTestSuite))
}

func (suite *StrategyTestSuite) fileConfig(mode, kind string, params map[string]float64) *config.Config {
	return &config.Config{
		Mode:        mode,
		HistorySize: 5,
		Capacity:    0,
		Name:        "",
		Strategy: config.StrategyConfig{
			Kind:   kind,
			Params: params,
		},
	}
}

func (suite *StrategyTestSuite) TestSMACrossRecompute() {
	cfg, err := Build(suite.fileConfig("recompute", KindSMACross, nil))
	suite.Require().NoError(err)
	suite.Equal(engine.ModeRecompute, cfg.Mode)
	suite.True(cfg.Recompute.IsSome())
	suite.True(cfg.Incremental.IsNone())
	suite.Equal(types.QualifierEntry, cfg.BuyQualifier.Unwrap())
	suite.Equal(types.QualifierExit, cfg.SellQualifier.Unwrap())
}

func (suite *StrategyTestSuite) TestSMACrossIncremental() {
	cfg, err := Build(suite.fileConfig("incremental", KindSMACross, nil))
	suite.Require().NoError(err)
	suite.Equal(engine.ModeIncremental, cfg.Mode)
	suite.True(cfg.Incremental.IsSome())
	suite.True(cfg.Recompute.IsNone())
	suite.NotNil(cfg.Incremental.Unwrap().Buy)
	suite.NotNil(cfg.Incremental.Unwrap().Sell)
}

func (suite *StrategyTestSuite) TestNameFallsBackToKind() {
	cfg, err := Build(suite.fileConfig("recompute", KindRSIThreshold, nil))
	suite.Require().NoError(err)
	suite.Equal("rsi_threshold", cfg.Name)
}

func (suite *StrategyTestSuite) TestExplicitNameKept() {
	fileCfg := suite.fileConfig("recompute", KindSMACross, nil)
	fileCfg.Name = "golden-cross"

	cfg, err := Build(fileCfg)
	suite.Require().NoError(err)
	suite.Equal("golden-cross", cfg.Name)
}

func (suite *StrategyTestSuite) TestUnknownKind() {
	_, err := Build(suite.fileConfig("recompute", "martingale", nil))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *StrategyTestSuite) bar(i int, close float64) types.Bar {
	baseTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return types.Bar{
		Symbol: "SPY",
		Time:   baseTime.Add(time.Duration(i) * time.Minute),
		Open:   close,
		High:   close + 1,
		Low:    close - 1,
		Close:  close,
		Volume: 100,
	}
}

// The two styles of the SMA cross strategy should agree on where the
// crossing bar is.
func (suite *StrategyTestSuite) TestSMACrossFiresInBothModes() {
	params := map[string]float64{"fast_period": 1, "slow_period": 3}
	closes := []float64{12, 10, 8, 9, 12}

	for _, mode := range []string{"recompute", "incremental"} {
		fileCfg := suite.fileConfig(mode, KindSMACross, params)
		fileCfg.HistorySize = 4

		cfg, err := Build(fileCfg)
		suite.Require().NoError(err)

		eng, err := engine.New(cfg, indicator.DefaultRegistry(), logger.NewNopLogger())
		suite.Require().NoError(err)

		var all []types.Signal

		for i, close := range closes {
			signals, err := eng.ProcessEvent([]types.Bar{suite.bar(i, close)})
			suite.Require().NoError(err, "mode %s", mode)

			all = append(all, signals...)
		}

		suite.Require().Len(all, 1, "mode %s", mode)
		suite.Equal(types.RatingBuy, all[0].Rating, "mode %s", mode)
	}
}

func (suite *StrategyTestSuite) TestRSIThresholdIncremental() {
	// RSI(2) over monotonically falling closes pins to 0, below any buy
	// threshold.
	fileCfg := suite.fileConfig("incremental", KindRSIThreshold,
		map[string]float64{"period": 2, "buy_threshold": 30, "sell_threshold": 70})
	fileCfg.HistorySize = 3

	cfg, err := Build(fileCfg)
	suite.Require().NoError(err)

	eng, err := engine.New(cfg, indicator.DefaultRegistry(), logger.NewNopLogger())
	suite.Require().NoError(err)

	closes := []float64{20, 19, 18, 17}

	var all []types.Signal

	for i, close := range closes {
		signals, err := eng.ProcessEvent([]types.Bar{suite.bar(i, close)})
		suite.Require().NoError(err)

		all = append(all, signals...)
	}

	suite.Require().NotEmpty(all)

	for _, signal := range all {
		suite.Equal(types.RatingBuy, signal.Rating)
	}
}
