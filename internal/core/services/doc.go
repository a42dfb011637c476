// Package services implements the driving ports on top of the driven
// ports. RetrievalService owns the in-memory index and its lifecycle;
// Assistant wraps the text-generation collaborator; Watcher keeps the
// index fresh when the forum database changes.
package services
