// Package io reads chart definitions and datasets and writes option
// documents.
//
// # Definitions
//
// A definition is a TOML file describing every component of a chart. Keys
// mirror the builder methods of package chart in snake_case; a key that is
// not written stays absent in the document:
//
//	name = "aqi"
//	description = "Daily readings, colored by **PM2.5**."
//	background_color = "#333"
//	data = "data.json"
//
//	[[axis]]
//	dim = 0
//	name = "日期"
//	inverse = true
//
//	[[axis]]
//	dim = 1
//	name = "AQI"
//
//	[visual_map]
//	min = 0
//	max = 150
//	dimension = 1
//
//	[[series]]
//	type = "parallel"
//	name = "Beijing"
//	data = "beijing"
//
// Unknown keys are rejected so typos surface instead of silently dropping a
// setting.
//
// # Datasets
//
// Series rows live either inline in the definition (rows = [[1, 55, "良"]])
// or in a JSON dataset file that maps a key to an array of rows:
//
//	{"beijing": [[1, 55, 9, 56, 0.46, 18, 6, "良"]]}
//
// JSON numbers become numeric values and JSON strings become text values;
// any other element is rejected.
//
// A dataset file ending in .xlsx is read as a workbook instead: each sheet
// is one key and each non-blank sheet row one data row (see [ReadWorkbook]).
//
// # Documents
//
// [WriteDocument] and [ExportDocument] write a finalized snapshot, compact or
// indented.
package io
