// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/rpc"
)

// editors often write a file in several steps
const reloadDelay = 2 * time.Second

// configReloader - re-read the configuration file on change and
// apply the settings that can change while running
type configReloader struct {
	log      *logger.L
	fileName string
	channel  WatcherChannel
	delay    time.Duration
	read     func(string) (*Configuration, error)
	apply    func(*rpc.RateLimitConfiguration) error
}

func newConfigReloader(log *logger.L, fileName string, channel WatcherChannel) *configReloader {
	return &configReloader{
		log:      log,
		fileName: fileName,
		channel:  channel,
		delay:    reloadDelay,
		read:     getConfiguration,
		apply:    rpc.SetRateLimit,
	}
}

// Run - background process that waits for file events
func (c *configReloader) Run(args interface{}, shutdown <-chan struct{}) {
	c.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-c.channel.change:
			c.log.Debugf("receive file change event, wait %s to adapt", c.delay)
			select {
			case <-shutdown:
				break loop
			case <-time.After(c.delay):
			}
			if err := c.Refresh(); nil != err {
				c.log.Errorf("failed to reload configuration from: %s  error: %s", c.fileName, err)
			}
		case <-c.channel.remove:
			c.log.Warn("config file removed")
		}
	}

	c.log.Info("stopped")
}

// Refresh - read the file and apply the rate limit
func (c *configReloader) Refresh() error {
	configuration, err := c.read(c.fileName)
	if nil != err {
		return err
	}
	return c.apply(&configuration.RateLimit)
}
