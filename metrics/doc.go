// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics declares the Prometheus counters exposed on /metrics.
package metrics
