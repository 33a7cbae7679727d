// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names neither an HTTP nor
// a gRPC address, so the notes service would have nothing to listen on.
var errNoHandlersAreCreated = errors.New("neither http nor grpc address is configured")
