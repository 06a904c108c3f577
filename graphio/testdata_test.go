package graphio_test

const scenarioYAML = `
directed: true
vertices: [Z]
edges:
  - {from: S, to: A1, weight: -2, attrs: {grade: 3}}
  - {from: A1, to: T, weight: 7}
  - {from: S, to: A2, weight: 1}
  - {from: A2, to: B2, weight: 1}
  - {from: B2, to: C2, weight: 1}
  - {from: C2, to: T, weight: 1}
`
