// SPDX-License-Identifier: Apache-2.0

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither an HTTP nor
// a gRPC address is configured, so no transport handler can be initialized.
// Startup treats this as a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
