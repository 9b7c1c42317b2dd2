// Package jobcoach provides a career-coaching content pipeline. It fetches
// job postings from the web (static HTTP with a headless-browser fallback),
// extracts the posting text, and turns LLM output into structured data:
// parsed postings, tailored resumes, cover letters, and mock-interview
// material.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, gemini/).
package jobcoach
