// Package extends scans config documents for "extends" references — the
// field naming another config file to inherit settings from — and reports
// each reference's value together with its exact source range.
package extends
