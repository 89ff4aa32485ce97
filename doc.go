// Copyright 2025 The CO2 Monitor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package display is a container for the rendering and display packages of
// the CO2 monitor: a 2-bit grayscale canvas (image2bit), the e-paper panel
// driver (epd2in9), the frame composition layer (screen) and a terminal
// preview sink (termsink).
package display
