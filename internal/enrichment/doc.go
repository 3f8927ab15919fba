// Package enrichment fills in and normalizes conversion events before they
// are relayed.
//
// An [Enricher] works on a batch that already passed validation:
//
//   - Dedup drops repeated client-supplied event ids, keeping the first.
//   - AssignIDs generates evt_<unix-millis>_<8 base36> ids for events
//     without one and regenerates on collision.
//   - Enrich backfills event_time, action_source, client ip and user agent,
//     fbp and fbc cookies, session id and event_source_url, then hashes
//     em, ph and external_id.
//
// All steps mutate events in place and never fail.
package enrichment
