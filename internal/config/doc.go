// Package config provides the typed schema, loader and validation for
// NeXtSRGAN training configuration documents.
//
// A configuration is loaded once at startup, validated eagerly and handed
// read-only to every consumer (training loop, model factory, dataset
// builder). Loaded instances are never mutated afterwards; callers needing
// different values build a new validated instance via WithOverrides.
//
// Validation accumulates every violation and reports them together. Each
// violation carries the dotted document path of the offending field, e.g.
// "training.learning_rate.rate".
package config
