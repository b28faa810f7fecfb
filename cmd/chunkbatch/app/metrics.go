/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

type metricsServer struct {
	server   *http.Server
	listener net.Listener
	done     chan struct{}
}

// startMetricsServer serves the metrics gathered by gatherer on address until Close is called.
func startMetricsServer(address string, gatherer prometheus.Gatherer, logger logr.Logger) (*metricsServer, error) {
	if gatherer == nil {
		return nil, commonerrors.UndefinedVariable("metrics gatherer")
	}
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnavailable, err, "could not listen on '%v'", address)
	}
	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	s := &metricsServer{
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: time.Minute,
			ReadTimeout:       time.Minute,
		},
		listener: listener,
		done:     make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		err := s.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "metrics server failed", "address", listener.Addr().String())
		}
	}()
	logger.Info("serving metrics", "address", listener.Addr().String(), "path", metricsPath)
	return s, nil
}

// Address returns the address the server listens on.
func (s *metricsServer) Address() string {
	return s.listener.Addr().String()
}

func (s *metricsServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	<-s.done
	return err
}
