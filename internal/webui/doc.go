// Package webui serves the converter and regression views over HTTP.
//
// HTML pages
//
//	GET  /                        index
//	GET  /converter               converter form
//	POST /converter/to-evm        form field "polka"
//	POST /converter/to-ss58       form field "eth"
//	GET  /regression              chart, description and optional details
//	POST /regression/model        form field "model"
//	POST /regression/details      toggle the details panel
//	POST /regression/regenerate   draw a fresh dataset
//	GET  /regression/chart.svg    chart of the session's dataset (?all=1 for every curve)
//
// JSON API
//
//	POST /api/v1/address/to-evm            {"address": "<ss58>"}
//	POST /api/v1/address/to-ss58           {"address": "0x...", "ss58_format": 42}
//	GET  /api/v1/address/decode/:address
//	GET  /api/v1/regression/models
//	GET  /api/v1/regression/dataset?seed=N
//	GET  /api/v1/regression/predict/:model?seed=N
//
// GET /healthz answers 503 until the crypto gate resolves. Address errors map
// to 400, unknown models to 404 and conversions before readiness to 503.
//
// Each browser gets a session cookie holding a random id. The session owns one
// converter view and one regression view, so a dataset stays fixed across
// model switches until it is regenerated. Idle sessions are pruned.
package webui
