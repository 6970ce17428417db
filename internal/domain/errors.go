package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNilDigest       = goerr.New("digest is nil")
	ErrNoDigest        = goerr.New("no digest loaded")
	ErrSuperseded      = goerr.New("processing superseded by a newer request")
	ErrAlertNotFound   = goerr.New("alert not found")
	ErrClusterNotFound = goerr.New("cluster not found")
	ErrUnknownSource   = goerr.New("digest source is not registered")
)
