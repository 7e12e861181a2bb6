package mathutil

// Mat3 is a 3×3 matrix stored as three column vectors.
// Row i of the matrix is (Col1[i], Col2[i], Col3[i]).
type Mat3 struct {
	Col1, Col2, Col3 Vec3
}

// NewMat3 builds a matrix from 9 scalars given in row-major reading order
//
//	a b c
//	d e f
//	g h i
//
// and stores them as the columns (a,d,g), (b,e,h), (c,f,i).
func NewMat3(a, b, c, d, e, f, g, h, i float64) Mat3 {
	return Mat3{
		Col1: Vec3{a, d, g},
		Col2: Vec3{b, e, h},
		Col3: Vec3{c, f, i},
	}
}

func Mat3FromCols(c1, c2, c3 Vec3) Mat3 {
	return Mat3{Col1: c1, Col2: c2, Col3: c3}
}

func Mat3Identity() Mat3 {
	return NewMat3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Det expands along the first row.
func (m Mat3) Det() float64 {
	c1, c2, c3 := m.Col1, m.Col2, m.Col3
	return c1.X*(c2.Y*c3.Z-c2.Z*c3.Y) -
		c2.X*(c1.Y*c3.Z-c1.Z*c3.Y) +
		c3.X*(c1.Y*c2.Z-c1.Z*c2.Y)
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m.Col1.X*v.X + m.Col2.X*v.Y + m.Col3.X*v.Z,
		m.Col1.Y*v.X + m.Col2.Y*v.Y + m.Col3.Y*v.Z,
		m.Col1.Z*v.X + m.Col2.Z*v.Y + m.Col3.Z*v.Z,
	}
}

// Mat3Mul returns a × b, i.e. the map v → a(b(v)).
func Mat3Mul(a, b Mat3) Mat3 {
	return Mat3{
		Col1: a.MulVec3(b.Col1),
		Col2: a.MulVec3(b.Col2),
		Col3: a.MulVec3(b.Col3),
	}
}

func (m Mat3) Transpose() Mat3 {
	return NewMat3(
		m.Col1.X, m.Col1.Y, m.Col1.Z,
		m.Col2.X, m.Col2.Y, m.Col2.Z,
		m.Col3.X, m.Col3.Y, m.Col3.Z,
	)
}
