// Package actions declares the action groups of the dashboard, one group per
// originating surface. Type tags produced here are part of the observable
// contract (logging, replay) and must not change.
package actions
