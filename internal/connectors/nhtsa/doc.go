// Package nhtsa implements a read-only client for the NHTSA vehicle-data
// services.
//
// Three services are consumed, all unauthenticated JSON over HTTPS:
//
//   - vPIC: VIN decoding, make catalog and model catalog
//   - Recalls: recall campaigns by make/model/year or by VIN
//   - Complaints: consumer complaints by make/model/year
//
// # Request Model
//
// Every method issues exactly one GET request. There are no retries, no
// backoff and no caching. A response outside the 2xx range is returned as an
// [*UpstreamError] carrying the status code; network failures are wrapped with
// [domain.ErrUpstream] as well, so callers can treat both alike with errors.Is.
//
// The client applies the configured request timeout (Config.Timeout) to every
// call. A zero timeout leaves requests bounded only by the caller's context.
//
// # Example Usage
//
//	client := nhtsa.NewClient(nhtsa.Config{})
//	attrs, err := client.DecodeVIN(ctx, "1HGCM82633A004352")
package nhtsa
