// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// tripcache is the main package for the tripcache command line tool. It looks
// up travel distance and time between two addresses and remembers every
// answer in a local cache so repeat lookups cost no API calls.
package main
