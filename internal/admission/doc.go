// Package admission defines the student admission flow hosted by the wizard:
// the Application record, the seven admission steps, their editable fields,
// option catalogues and the per-step validation rules the host runs before
// letting the wizard move forward.
package admission
