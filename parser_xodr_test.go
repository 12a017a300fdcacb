package xodr

import (
	"strings"
	"testing"
)

const minimalTwoRoadDoc = `<?xml version="1.0"?>
<OpenDRIVE>
  <header revMajor="1" revMinor="4" name="" version="1.00" date="" north="0" south="0" east="0" west="0">
    <geoReference><![CDATA[+proj=utm +zone=32]]></geoReference>
  </header>
  <road name="first" id="1" length="10" junction="-1">
    <link>
      <successor elementType="road" elementId="2" contactPoint="start"/>
    </link>
    <planView>
      <geometry s="0" x="0" y="0" hdg="0" length="10">
        <line/>
      </geometry>
    </planView>
    <lanes>
      <laneSection s="0">
        <left>
          <lane id="1" type="driving">
            <link><successor id="1"/></link>
            <width sOffset="0" a="3.5" b="0" c="0" d="0"/>
          </lane>
        </left>
        <center>
          <lane id="0" type="driving"/>
        </center>
        <right>
          <lane id="-1" type="driving">
            <width sOffset="0" a="3.5" b="0" c="0" d="0"/>
          </lane>
        </right>
      </laneSection>
    </lanes>
  </road>
  <road name="second" id="2" length="5" junction="-1">
    <link>
      <predecessor elementType="road" elementId="1" contactPoint="end"/>
    </link>
    <planView>
      <geometry s="0" x="10" y="0" hdg="0" length="5">
        <line/>
      </geometry>
    </planView>
    <lanes>
      <laneSection s="0">
        <left>
          <lane id="1" type="driving">
            <link><predecessor id="1"/></link>
            <width sOffset="0" a="3.5" b="0" c="0" d="0"/>
          </lane>
        </left>
        <center>
          <lane id="0" type="driving"/>
        </center>
      </laneSection>
    </lanes>
  </road>
</OpenDRIVE>
`

func TestParseMinimalDocumentNoErrors(t *testing.T) {
	result, err := NewParser(WithSource(strings.NewReader(minimalTwoRoadDoc))).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	m := result.Map
	if len(m.Roads) != 2 {
		t.Fatalf("got %d roads, want 2", len(m.Roads))
	}
	if !m.HasGeoReference() || m.GeoReference != "+proj=utm +zone=32" {
		t.Errorf("GeoReference = %q, hasGeoRef = %v", m.GeoReference, m.HasGeoReference())
	}
	if m.TotalNumLanes() != 3 {
		t.Errorf("TotalNumLanes() = %d, want 3", m.TotalNumLanes())
	}
	road0, ok := m.RoadByID("1")
	if !ok {
		t.Fatal("road 1 not found by id")
	}
	if road0.Links.Successor.RoadIdx != 1 {
		t.Errorf("road 1 successor resolved to %d, want 1", road0.Links.Successor.RoadIdx)
	}
}

func TestParseDocumentReportsUnexpectedAttribute(t *testing.T) {
	doc := strings.Replace(minimalTwoRoadDoc, `<road name="first" id="1" length="10" junction="-1">`,
		`<road name="first" id="1" length="10" junction="-1" bogus="x">`, 1)
	result, err := NewParser(WithSource(strings.NewReader(doc))).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == KindUnexpectedAttribute && e.Attribute == "bogus" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected KindUnexpectedAttribute for 'bogus', got %v", result.Errors)
	}
}

func TestParseDocumentLaxModeDropsWarnings(t *testing.T) {
	doc := strings.Replace(minimalTwoRoadDoc, `<road name="first" id="1" length="10" junction="-1">`,
		`<road name="first" id="1" length="10" junction="-1" bogus="x">`, 1)
	result, err := NewParser(WithSource(strings.NewReader(doc)), WithLaxMode(true)).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, e := range result.Errors {
		if e.Class() == ClassNone {
			t.Errorf("lax mode should drop ClassNone errors, found %v", e)
		}
	}
}

func TestParseDocumentMissingRequiredAttributeIsFatal(t *testing.T) {
	doc := strings.Replace(minimalTwoRoadDoc, `length="10" junction="-1">`, `junction="-1">`, 1)
	result, err := NewParser(WithSource(strings.NewReader(doc))).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == KindMissingAttribute && e.Attribute == "length" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected KindMissingAttribute for 'length', got %v", result.Errors)
	}
}
