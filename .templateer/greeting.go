package templates

// Template greets one person.
const Template = "Hello {{ .name }}!\n"
