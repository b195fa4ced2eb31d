// Package hog implements the peripheral side of the HID-over-GATT profile.
//
// The root package defines the shared vocabulary: 16/32/128-bit UUIDs, ATT
// status codes, the GATT attribute table types, the Transport interface the
// underlying BLE stack must provide, and the closed set of stack events the
// engine consumes. The engine itself lives in the device subpackage; the
// leaf codecs (advertising payloads, HID reports, bonding secrets) live in
// their own subpackages.
package hog
