// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "go.uber.org/zap"

// NewLogger returns a production zap logger, or a development one (human
// readable, debug level, caller annotated) when dev is true.
func NewLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
