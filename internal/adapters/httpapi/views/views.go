// Package views ships the HTML templates inside the binary.
package views

import "embed"

//go:embed templates/* includes/*
var Content embed.FS
