// SPDX-License-Identifier: Apache-2.0

// Package client implements the dashboard's data-synchronization core: the
// in-memory command mirror, the favorites set, and the counter/activity
// reporter, all backed by the transport gateway in internal/adapter.
//
// The stores follow an optimistic-after-confirm discipline: in-memory state
// changes only after the remote call succeeded. Remote failures leave local
// state byte-for-byte unchanged.
package client
