// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build !js

package sleep

// Default returns the Sleeper suited to the platform the program runs on.
func Default() Sleeper {
	return Timer{}
}
