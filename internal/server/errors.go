// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated  = errors.New("neither the http nor the grpc transport could be created")
	errListeningGRPCAddress = errors.New("grpc health listener")
)
