package config

import (
	"github.com/evdnx/stgcore/logger"
	"github.com/evdnx/stgcore/types"
	"go.uber.org/multierr"
)

func (c *StrategyConfig) Trade() Trade         { return c.trade }
func (c *StrategyConfig) Indicator() Indicator { return c.data }

// Market returns the symbol/timeframe context of the trade handle.
func (c *StrategyConfig) Market() (types.Market, bool) {
	if c.trade == nil {
		return types.Market{}, false
	}
	return c.trade.Market(), true
}

// SetTrade installs a new trade handle, closing the previous one first when
// this config owned it. The new handle is installed even if that close fails.
func (c *StrategyConfig) SetTrade(t Trade, own Ownership) error {
	var err error
	if c.trade != nil && c.tradeOwner == Owned && c.trade != t {
		err = c.trade.Close()
		if err != nil {
			c.Log().Warn("trade_release_failed", logger.Int64("id", c.ID), logger.Err(err))
		}
	}
	c.trade = t
	c.tradeOwner = own
	c.torndown = false
	return err
}

// SetMarket opens an owned trade handle for m and installs it.
func (c *StrategyConfig) SetMarket(factory TradeFactory, m types.Market) error {
	t, err := factory(m)
	if err != nil {
		return err
	}
	return c.SetTrade(t, Owned)
}

// SetIndicator follows the same ownership policy as SetTrade.
func (c *StrategyConfig) SetIndicator(d Indicator, own Ownership) error {
	var err error
	if c.data != nil && c.dataOwner == Owned && c.data != d {
		err = c.data.Close()
		if err != nil {
			c.Log().Warn("indicator_release_failed", logger.Int64("id", c.ID), logger.Err(err))
		}
	}
	c.data = d
	c.dataOwner = own
	c.torndown = false
	return err
}

// Teardown releases the handles this config owns. Borrowed handles are only
// dropped. Calling it again is a no-op.
func (c *StrategyConfig) Teardown() error {
	if c.torndown {
		return nil
	}
	c.torndown = true

	var err error
	if c.data != nil && c.dataOwner == Owned {
		err = multierr.Append(err, c.data.Close())
	}
	if c.trade != nil && c.tradeOwner == Owned {
		err = multierr.Append(err, c.trade.Close())
	}
	c.data, c.trade = nil, nil
	c.dataOwner, c.tradeOwner = Borrowed, Borrowed
	if err != nil {
		c.Log().Error("teardown_failed", logger.Int64("id", c.ID), logger.Err(err))
	}
	return err
}
