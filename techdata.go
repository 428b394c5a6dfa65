// Package techdata turns hand-authored specification markup ("tabs" attached
// to a catalog item) into a normalized table of variants, groups and
// parameter rows whose values are rich-text blocks.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, etree/).
package techdata
