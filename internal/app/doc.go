// Package app assembles the appraisal service from configuration: catalog,
// price cache, provider clients, pricing pipelines and the appraiser.
package app
