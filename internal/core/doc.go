// Package core provides the join-and-aggregate logic behind the ACME reports.
//
// # Data Flow
//
//  1. [ReadRowsFile] parses a CSV file into header-keyed [Row] values,
//     stripping a UTF-8 BOM and replacing invalid bytes on the way.
//  2. [DecodeProducts], [DecodeOrders] and [DecodeCustomers] turn rows
//     into immutable entities. [LoadDataset] does both for all three files.
//  3. The join functions derive new lists from the entities:
//
//     - [ComputeOrderCosts]: order x products, summing costs per token
//     - [ComputePurchasersByProduct]: product x orders, distinct customers
//     - [ComputeCustomerSpend]: customer x order costs, summing totals
//
//  4. [RankCustomers] sorts customer spend descending, stable on ties.
//
// Ids are opaque strings and never compared numerically. Totals are float64
// from decoding to output; they are never formatted and re-parsed.
//
// # Error Handling
//
// Decoding fails on the first bad row with a [*MalformedRowError] or an
// [*InvalidNumericFieldError]; unreadable files yield a [*MissingFileError].
// Unmatched product ids and customers without orders are not errors.
// [MapError] maps any error to a [UserMessage] with a support code.
package core
