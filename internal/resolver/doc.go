// Package resolver maps extends references to config file paths. Path
// references resolve against the referencing file's directory; package-style
// references walk ancestor package directories (node_modules by default)
// toward the filesystem root, nearest match first. It also builds document
// links for whole config files and follows inheritance chains transitively.
package resolver
